package uaaplugin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hashicorp/go-hclog"
	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/openkcm/plugin-sdk/pkg/hclog2slog"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	idmangv1 "github.com/openkcm/plugin-sdk/proto/plugin/identity_management/v1"
	configv1 "github.com/openkcm/plugin-sdk/proto/service/common/config/v1"

	"github.com/openkcm/uaa-client/pkg/clients/uaa"
	"github.com/openkcm/uaa-client/pkg/config"
	"github.com/openkcm/uaa-client/pkg/utils/errs"
)

var (
	ErrID               = oops.In("Identity management Plugin")
	ErrNoUAAClient      = errors.New("no UAA client exists")
	ErrGetGroupsForUser = errors.New("failed to get groups for user")
	ErrGetUsersForGroup = errors.New("failed to get users for group")
	ErrGetAllGroups     = errors.New("failed to get all groups")
	ErrNoID             = errors.New("no filter id provided")
)

// Users that belong to a group carry the group name under groups.display;
// groups list their member user ids under members.value.
const defaultGroupsFilterAttribute = "groups.display"
const defaultUsersFilterAttribute = "members.value"

type Params struct {
	GroupAttribute string
	UserAttribute  string
}

// Plugin serves the identity-management plugin protocol on top of the UAA
// SCIM client.
type Plugin struct {
	idmangv1.UnimplementedIdentityManagementServiceServer
	configv1.UnsafeConfigServer

	logger    hclog.Logger
	uaaClient *uaa.Client
	params    Params
	buildInfo string
}

var (
	_ idmangv1.IdentityManagementServiceServer = (*Plugin)(nil)
	_ configv1.ConfigServer                    = (*Plugin)(nil)
)

func NewPlugin(buildInfo string) *Plugin {
	return &Plugin{buildInfo: buildInfo}
}

func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = logger // Keep a copy of the logger for client creation
	slog.SetDefault(hclog2slog.New(logger))
}

func (p *Plugin) Configure(
	ctx context.Context,
	req *configv1.ConfigureRequest,
) (*configv1.ConfigureResponse, error) {
	slog.Info("Configuring plugin", "buildInfo", p.buildInfo)

	cfg := config.Config{}

	err := yaml.Unmarshal([]byte(req.GetYamlConfiguration()), &cfg)
	if err != nil {
		return nil, ErrID.Wrapf(err, "Failed to get yaml Configuration")
	}

	groupAttr, err := loadParam(cfg.Params.GroupAttribute)
	if err != nil {
		return nil, ErrID.Wrapf(err, "Failed loading group attribute")
	}

	userAttr, err := loadParam(cfg.Params.UserAttribute)
	if err != nil {
		return nil, ErrID.Wrapf(err, "Failed loading user attribute")
	}

	p.params = Params{GroupAttribute: groupAttr, UserAttribute: userAttr}

	client, err := uaa.NewClient(&cfg, p.logger)
	if err != nil {
		return nil, err
	}

	p.uaaClient = client

	return &configv1.ConfigureResponse{}, nil
}

func (p *Plugin) GetAllGroups(
	ctx context.Context,
	request *idmangv1.GetAllGroupsRequest,
) (*idmangv1.GetAllGroupsResponse, error) {
	if p.uaaClient == nil {
		return nil, ErrNoUAAClient
	}

	groups, err := p.uaaClient.AllPages(ctx, uaa.ResourceTypeGroup, uaa.Query{
		"attributes": "id,displayName",
	})
	if err != nil {
		return nil, errs.Wrap(ErrGetAllGroups, err)
	}

	responseGroups := make([]*idmangv1.Group, len(groups))

	for i, group := range groups {
		responseGroups[i] = &idmangv1.Group{
			Id:   group.StringAttr("id"),
			Name: group.StringAttr("displayName"),
		}
	}

	return &idmangv1.GetAllGroupsResponse{Groups: responseGroups}, nil
}

func (p *Plugin) GetUsersForGroup(
	ctx context.Context,
	request *idmangv1.GetUsersForGroupRequest,
) (*idmangv1.GetUsersForGroupResponse, error) {
	if p.uaaClient == nil {
		return nil, ErrNoUAAClient
	}

	if request.GetGroupId() == "" {
		return nil, errs.Wrap(ErrGetUsersForGroup, ErrNoID)
	}

	filter := getFilter(defaultGroupsFilterAttribute, request.GetGroupId(), p.params.GroupAttribute)

	users, err := p.uaaClient.AllPages(ctx, uaa.ResourceTypeUser, uaa.Query{
		"attributes": "id,userName,displayName",
		"filter":     filter.ToString(),
	})
	if err != nil {
		return nil, errs.Wrap(ErrGetUsersForGroup, err)
	}

	responseUsers := make([]*idmangv1.User, len(users))

	for i, user := range users {
		responseUsers[i] = &idmangv1.User{
			Id:   user.StringAttr("id"),
			Name: user.StringAttr("displayName"),
		}
	}

	return &idmangv1.GetUsersForGroupResponse{Users: responseUsers}, nil
}

func (p *Plugin) GetGroupsForUser(
	ctx context.Context,
	request *idmangv1.GetGroupsForUserRequest,
) (*idmangv1.GetGroupsForUserResponse, error) {
	if p.uaaClient == nil {
		return nil, ErrNoUAAClient
	}

	if request.GetUserId() == "" {
		return nil, errs.Wrap(ErrGetGroupsForUser, ErrNoID)
	}

	filter := getFilter(defaultUsersFilterAttribute, request.GetUserId(), p.params.UserAttribute)

	groups, err := p.uaaClient.AllPages(ctx, uaa.ResourceTypeGroup, uaa.Query{
		"attributes": "id,displayName",
		"filter":     filter.ToString(),
	})
	if err != nil {
		return nil, errs.Wrap(ErrGetGroupsForUser, err)
	}

	responseGroups := make([]*idmangv1.Group, len(groups))

	for i, group := range groups {
		responseGroups[i] = &idmangv1.Group{
			Id:   group.StringAttr("id"),
			Name: group.StringAttr("displayName"),
		}
	}

	return &idmangv1.GetGroupsForUserResponse{Groups: responseGroups}, nil
}

func loadParam(ref commoncfg.SourceRef) (string, error) {
	if ref.Source == "" {
		return "", nil
	}

	raw, err := commoncfg.LoadValueFromSourceRef(ref)
	if err != nil {
		return "", err
	}

	var value string

	err = json.Unmarshal(raw, &value)
	if err != nil {
		return "", err
	}

	return value, nil
}

func getFilter(defaultAttribute, value string, setAttribute string) uaa.FilterExpression {
	filter := uaa.FilterComparison{
		Attribute: defaultAttribute,
		Operator:  uaa.FilterOperatorEqual,
		Value:     value,
	}

	if setAttribute != "" {
		filter.Attribute = setAttribute
	}

	return filter
}
