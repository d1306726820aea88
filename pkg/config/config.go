package config

import "github.com/openkcm/common-sdk/pkg/commoncfg"

// Params holds the filter attributes the plugin matches group and user
// identifiers against.
type Params struct {
	GroupAttribute commoncfg.SourceRef `yaml:"groupAttribute"`
	UserAttribute  commoncfg.SourceRef `yaml:"userAttribute"`
}

// Config configures a UAA client. Token acquisition is out of scope; the
// bearer token is resolved from its source reference as-is. An optional MTLS
// block switches the transport to client-certificate authentication.
type Config struct {
	Host   string              `yaml:"host"`
	Token  commoncfg.SourceRef `yaml:"token"`
	MTLS   *commoncfg.MTLS     `yaml:"mtls,omitempty"`
	Params Params              `yaml:"params"`
}
