//nolint:forbidigo,cyclop,funlen
package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/magodo/slog2hclog"

	"github.com/openkcm/uaa-client/pkg/clients/uaa"
	"github.com/openkcm/uaa-client/pkg/utils/tlsconfig"
)

const usage = `Script to test UAA SCIM API calls.
Usage: uaaclient [options]
Options:
	--action	Action to perform (Get, List, ID, ChangePassword, ChangeSecret) (Required)
	--target	The UAA server base URL (Required)
	--token		Bearer token for authorization (Required)
	--type		Resource type (user, group, client, user_id)
	--id		ID of the resource to retrieve
	--name		Resource name to resolve to an id
	--filter	SCIM filter expression for listing
	--attributes	Comma-separated attribute list for listing
	--newValue	New password/secret for the credential-change actions
	--oldValue	Old password/secret for the credential-change actions
	--certPath	Path to the client certificate file (mTLS)
	--keyPath	Path to the client private key file (mTLS)
	--caPath	Path to the CA certificate file
	--skipVerify	Skip server certificate validation
`

func getLogger() hclog.Logger {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelError)

	return slog2hclog.New(slog.Default(), logLevel)
}

func resourceType(name string) (uaa.ResourceType, bool) {
	switch name {
	case "user":
		return uaa.ResourceTypeUser, true
	case "group":
		return uaa.ResourceTypeGroup, true
	case "client":
		return uaa.ResourceTypeClient, true
	case "user_id":
		return uaa.ResourceTypeUserID, true
	default:
		return 0, false
	}
}

func main() {
	log.SetOutput(os.Stdout)
	slog.SetLogLoggerLevel(slog.LevelDebug)

	var (
		action, target, token, typeName, id, name, filter, attributes string
		newValue, oldValue, certPath, keyPath, caPath                 string
		skipVerify                                                    bool
	)

	flag.StringVar(&action, "action", "", "Action to perform (Get, List, ID, ChangePassword, ChangeSecret)")
	flag.StringVar(&target, "target", "", "UAA server base URL")
	flag.StringVar(&token, "token", "", "Bearer token")
	flag.StringVar(&typeName, "type", "user", "Resource type (user, group, client, user_id)")
	flag.StringVar(&id, "id", "", "ID of the resource to retrieve")
	flag.StringVar(&name, "name", "", "Resource name to resolve to an id")
	flag.StringVar(&filter, "filter", "", "SCIM filter expression for listing")
	flag.StringVar(&attributes, "attributes", "", "Comma-separated attribute list for listing")
	flag.StringVar(&newValue, "newValue", "", "New password/secret")
	flag.StringVar(&oldValue, "oldValue", "", "Old password/secret")
	flag.StringVar(&certPath, "certPath", "", "Client Certificate Path")
	flag.StringVar(&keyPath, "keyPath", "", "Client Private Key Path")
	flag.StringVar(&caPath, "caPath", "", "CA Certificate Path")
	flag.BoolVar(&skipVerify, "skipVerify", false, "Skip server certificate validation")

	flag.Parse()

	if action == "" || target == "" || token == "" {
		fmt.Print(usage)
		os.Exit(1)
	}

	rtype, ok := resourceType(typeName)
	if !ok {
		fmt.Println("Invalid type. Supported types are: user, group, client, user_id")
		os.Exit(1)
	}

	tlsConfig, err := buildTLSConfig(certPath, keyPath, caPath, skipVerify)
	if err != nil {
		fmt.Println("Error building TLS config:", err.Error())
		os.Exit(1)
	}

	client := uaa.NewTokenClient(target, token, tlsConfig, getLogger())

	ctx := context.Background()

	switch action {
	case "Get":
		get(ctx, client, rtype, id)
	case "List":
		list(ctx, client, rtype, filter, attributes)
	case "ID":
		resolveID(ctx, client, rtype, name)
	case "ChangePassword":
		changePassword(ctx, client, id, newValue, oldValue)
	case "ChangeSecret":
		changeSecret(ctx, client, id, newValue, oldValue)
	default:
		fmt.Println("Invalid action. Supported actions are: Get, List, ID, ChangePassword, ChangeSecret")
		os.Exit(1)
	}
}

func buildTLSConfig(certPath, keyPath, caPath string, skipVerify bool) (*tls.Config, error) {
	if certPath == "" && caPath == "" && !skipVerify {
		return nil, nil
	}

	opts := []tlsconfig.Option{}
	if certPath != "" && keyPath != "" {
		opts = append(opts, tlsconfig.WithCertAndKey(certPath, keyPath))
	}

	if caPath != "" {
		opts = append(opts, tlsconfig.WithCA(caPath))
	}

	if skipVerify {
		opts = append(opts, tlsconfig.WithInsecureSkipVerify(true))
	}

	return tlsconfig.NewTLSConfig(opts...)
}

func get(ctx context.Context, client *uaa.Client, rtype uaa.ResourceType, id string) {
	if id == "" {
		fmt.Println("ID is required for Get action")
		os.Exit(1)
	}

	resource, err := client.Get(ctx, rtype, id)
	if err != nil {
		fmt.Println("Error getting resource:", err.Error())
		os.Exit(1)
	}

	printResource(resource)
}

func list(ctx context.Context, client *uaa.Client, rtype uaa.ResourceType, filter, attributes string) {
	query := uaa.Query{}
	if filter != "" {
		query["filter"] = filter
	}

	if attributes != "" {
		query["attributes"] = attributes
	}

	resources, err := client.AllPages(ctx, rtype, query)
	if err != nil {
		fmt.Println("Error listing resources:", err.Error())
		os.Exit(1)
	}

	fmt.Println("Found", len(resources), "resources:")

	for _, resource := range resources {
		printResource(resource)
	}
}

func resolveID(ctx context.Context, client *uaa.Client, rtype uaa.ResourceType, name string) {
	if name == "" {
		fmt.Println("Name is required for ID action")
		os.Exit(1)
	}

	id, err := client.ID(ctx, rtype, name)
	if err != nil {
		fmt.Println("Error resolving name:", err.Error())
		os.Exit(1)
	}

	fmt.Println("Resolved ID:", id)
}

func changePassword(ctx context.Context, client *uaa.Client, id, newValue, oldValue string) {
	if id == "" || newValue == "" {
		fmt.Println("ID and newValue are required for ChangePassword action")
		os.Exit(1)
	}

	_, err := client.ChangePassword(ctx, id, newValue, oldValue)
	if err != nil {
		fmt.Println("Error changing password:", err.Error())
		os.Exit(1)
	}

	fmt.Println("Password changed")
}

func changeSecret(ctx context.Context, client *uaa.Client, id, newValue, oldValue string) {
	if id == "" || newValue == "" {
		fmt.Println("ID and newValue are required for ChangeSecret action")
		os.Exit(1)
	}

	_, err := client.ChangeSecret(ctx, id, newValue, oldValue)
	if err != nil {
		fmt.Println("Error changing secret:", err.Error())
		os.Exit(1)
	}

	fmt.Println("Secret changed")
}

func printResource(resource uaa.Resource) {
	encoded, err := json.MarshalIndent(resource, "", "  ")
	if err != nil {
		fmt.Println("Error encoding resource:", err.Error())
		os.Exit(1)
	}

	fmt.Println(string(encoded))
}
