package minio

type ClientConfig struct {
	AccessKey         string
	SecretKey         string
	Endpoint          string `yaml:"endpoint"`
	Bucket            string `yaml:"bucket"`
	UseSSL            bool   `yaml:"use_ssl"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
