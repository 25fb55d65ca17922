// Package config provides the settings of the RSA tooling: logging, key storage,
// key generation parameters and the REST service configuration.
//
// Settings are plain structs with mapstructure tags so they can be loaded from YAML
// and environment variables, and each carries a Validate method.
package config
