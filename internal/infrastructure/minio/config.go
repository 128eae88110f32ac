package minio

type ClientConfig struct {
	AccessKey     string
	SecretKey     string
	Endpoint      string `yaml:"endpoint"`
	Secure        bool   `yaml:"secure"`
	Region        string `yaml:"region"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type ListerConfig struct {
	Timeout   int64 `yaml:"timeout_in_ms"`
	PageLimit int   `yaml:"page_limit"`
}

type UploaderConfig struct {
	Timeout      int64  `yaml:"timeout_in_ms"`
	CacheControl string `yaml:"cache_control"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
