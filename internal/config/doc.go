// Package config manages user-level settings stored at ~/.libreg/config.yaml
// and LIBREG_* environment variables: the ordered search roots the registry
// scans and the log level.
package config
