package callbridge_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for the scheduling service
 * end-to-end tests: container setup, account provisioning and assertions.
 */

const (
	testImageName = "callbridge-test:latest"

	bootstrapToken    = "test-bootstrap-token-12345"
	requesterEmail    = "buyer@example.com"
	requesterName     = "Bob Buyer"
	requesterPassword = "Requester123!"
	responderEmail    = "seller@example.com"
	responderName     = "Sally Seller"
	responderPassword = "Responder123!"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building CallBridge Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up CallBridge Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/callbridge/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the service in a container and returns the base URL.
// Each test gets a fresh container so rate limit buckets and data don't leak
// between tests.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"CALLBRIDGE_BOOTSTRAP_TOKEN": bootstrapToken,
			"CALLBRIDGE_DATABASE_FILE":   "/tmp/callbridge.db",
			"CALLBRIDGE_PEPPER_FILE":     "/tmp/pepper",
			"CALLBRIDGE_ISSUER":          "callbridge-test",
			"ENV":                        "test",
			"LOG_LEVEL":                  "info",
			"LOG_FORMAT":                 "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// onboardRequester creates the default requester account and returns its
// authenticated session.
func onboardRequester(t *testing.T, client *callsdk.SDKClient) (*callsdk.Session, *callsdk.AccountResponse) {
	t.Helper()

	session, resp, err := client.Onboard(t.Context(), callsdk.OnboardRequest{
		BootstrapToken: bootstrapToken,
		Email:          requesterEmail,
		Name:           requesterName,
		Password:       requesterPassword,
	})
	require.NoError(t, err, "Onboarding should succeed")
	require.Equal(t, "requester", resp.Account.Role)
	require.NotEmpty(t, resp.SessionToken)

	return session, &resp.Account
}

// inviteResponder walks the full invitation flow: the requester invites the
// default responder email and the responder accepts. Returns the responder's
// session and account.
func inviteResponder(t *testing.T, client *callsdk.SDKClient, requester *callsdk.Session) (*callsdk.Session, *callsdk.AccountResponse) {
	t.Helper()
	ctx := t.Context()

	created, err := requester.CreateInvitation(ctx, callsdk.CreateInvitationRequest{
		ResponderEmail: responderEmail,
		ResponderName:  responderName,
		Message:        "Would love to chat about your product.",
	})
	require.NoError(t, err, "Invitation creation should succeed")
	require.NotEmpty(t, created.Token, "Raw token should be returned on creation")

	session, resp, err := client.AcceptInvitation(ctx, callsdk.AcceptInvitationRequest{
		Token:    created.Token,
		Password: responderPassword,
	})
	require.NoError(t, err, "Invitation acceptance should succeed")
	require.Equal(t, "responder", resp.Account.Role)
	require.Equal(t, responderEmail, resp.Account.Email)

	return session, &resp.Account
}

// requireAPIError asserts the error is an *APIError with the given code.
func requireAPIError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *callsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}
