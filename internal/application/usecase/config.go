package usecase

type ManagerConfig struct {
	DefaultBucket   string `yaml:"default_bucket"`
	ListLimit       int    `yaml:"list_limit"`
	ListConcurrency int    `yaml:"list_concurrency"`
	MaxFileSize     int64  `yaml:"max_file_size"`
	CacheControl    string `yaml:"cache_control"`
}

type CollectionConfig struct {
	MaxFiles     int    `yaml:"max_files"`
	MaxImageSize int64  `yaml:"max_image_size"`
	MaxVideoSize int64  `yaml:"max_video_size"`
	CacheControl string `yaml:"cache_control"`
}

func (c ManagerConfig) withDefaults() ManagerConfig {
	if c.DefaultBucket == "" {
		c.DefaultBucket = "media"
	}
	if c.ListLimit <= 0 {
		c.ListLimit = 100
	}
	if c.ListConcurrency <= 0 {
		c.ListConcurrency = 4
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 50 * 1024 * 1024
	}
	if c.CacheControl == "" {
		c.CacheControl = "max-age=3600"
	}

	return c
}

func (c CollectionConfig) withDefaults() CollectionConfig {
	if c.MaxFiles <= 0 {
		c.MaxFiles = 30
	}
	if c.MaxImageSize <= 0 {
		c.MaxImageSize = 10 * 1024 * 1024
	}
	if c.MaxVideoSize <= 0 {
		c.MaxVideoSize = 100 * 1024 * 1024
	}
	if c.CacheControl == "" {
		c.CacheControl = "max-age=3600"
	}

	return c
}
