package uaaplugin

import (
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/openkcm/uaa-client/pkg/clients/uaa"
)

func (p *Plugin) SetTestClient(t *testing.T, host string, groupFilterAttribute, userFilterAttribute string) {
	t.Helper()

	p.uaaClient = uaa.NewTokenClient(host, "test-token", nil, hclog.NewNullLogger())
	p.params = Params{
		GroupAttribute: groupFilterAttribute,
		UserAttribute:  userFilterAttribute,
	}
}
