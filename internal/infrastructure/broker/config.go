package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
}

type PublisherConfig struct {
	Timeout int   `yaml:"timeout_in_ms"`
	MaxLen  int64 `yaml:"max_len"`
}

type ReceiverConfig struct {
	BlockTime int `yaml:"block_time_in_ms"`
	BatchSize int `yaml:"batch_size"`
}
