package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"payment-webhook-notifier/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T) string {
	t.Helper()
	content := []byte(`
aes:
  key: "` + testAESKey + `"
inbound:
  jwt_secret: "provider-jwt-secret"
  jwt_issuer: "payment-provider"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestRun_Token(t *testing.T) {
	cfgPath := writeConfig(t)
	var out bytes.Buffer

	err := run([]string{"--config", cfgPath, "token", "--subject", "anchor-1"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "expires_at="))

	claims, err := service.NewJWTTokenService("provider-jwt-secret", 0, "payment-provider").Validate(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "anchor-1", claims.Subject)
}

func TestRun_SealSecret(t *testing.T) {
	cfgPath := writeConfig(t)
	var out bytes.Buffer

	err := run([]string{"-c", cfgPath, "seal-secret"}, strings.NewReader("whsec_merchant\n"), &out)
	require.NoError(t, err)

	encSvc, err := service.NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	plain, err := encSvc.Decrypt(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "whsec_merchant", plain)
}

func TestRun_Sign(t *testing.T) {
	cfgPath := writeConfig(t)
	body := `{"transactionId":"T1"}`
	var out bytes.Buffer

	err := run([]string{"-c", cfgPath, "sign", "--secret", "s3cret"}, strings.NewReader(body), &out)
	require.NoError(t, err)

	want, err := service.NewHMACSignatureService().SignBytes([]byte(body), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out.String()))
}

func TestRun_UsageErrors(t *testing.T) {
	cfgPath := writeConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", []string{"-c", cfgPath}},
		{"unknown command", []string{"-c", cfgPath, "frobnicate"}},
		{"token without subject", []string{"-c", cfgPath, "token"}},
		{"sign without secret", []string{"-c", cfgPath, "sign"}},
		{"unknown flag", []string{"-c", cfgPath, "token", "--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, strings.NewReader(""), &bytes.Buffer{})
			assert.ErrorIs(t, err, errUsage)
		})
	}
}
