// Command notifierctl provides operator helpers for the webhook notifier:
// minting provider tokens, sealing merchant secrets and signing bodies.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"payment-webhook-notifier/config"
	"payment-webhook-notifier/internal/service"

	"github.com/spf13/pflag"
)

const usage = `usage: notifierctl [--config path] <command> [flags]

commands:
  token        mint a provider bearer token (--subject)
  seal-secret  encrypt a merchant signing secret for storage (--secret or stdin)
  sign         print the HMAC-SHA256 of a body (--secret, --file or stdin)
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "notifierctl:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	global := pflag.NewFlagSet("notifierctl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)
	configPath := global.StringP("config", "c", "", "path to config file")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := global.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "token":
		return runToken(cfg, rest[1:], stdout)
	case "seal-secret":
		return runSealSecret(cfg, rest[1:], stdin, stdout)
	case "sign":
		return runSign(rest[1:], stdin, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
}

func runToken(cfg *config.Config, args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("token", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	subject := fs.StringP("subject", "s", "", "provider identity placed in the sub claim")
	expiry := fs.Duration("expiry", cfg.Inbound.TokenExpiry, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *subject == "" {
		return fmt.Errorf("%w: --subject is required", errUsage)
	}
	if cfg.Inbound.JWTSecret == "" {
		return errors.New("inbound.jwt_secret is not configured")
	}

	tokenSvc := service.NewJWTTokenService(cfg.Inbound.JWTSecret, *expiry, cfg.Inbound.JWTIssuer)
	token, expiresAt, err := tokenSvc.Generate(*subject)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\nexpires_at=%s\n", token, expiresAt.UTC().Format(time.RFC3339))
	return nil
}

func runSealSecret(cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("seal-secret", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	secret := fs.String("secret", "", "plaintext signing secret (read from stdin when empty)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	plaintext := *secret
	if plaintext == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading secret: %w", err)
		}
		plaintext = strings.TrimSpace(string(b))
	}
	if plaintext == "" {
		return fmt.Errorf("%w: empty secret", errUsage)
	}

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		return err
	}
	sealed, err := encSvc.Encrypt(plaintext)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, sealed)
	return nil
}

func runSign(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("sign", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	secret := fs.String("secret", "", "HMAC key")
	file := fs.StringP("file", "f", "", "file holding the exact body bytes (stdin when empty)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *secret == "" {
		return fmt.Errorf("%w: --secret is required", errUsage)
	}

	var body []byte
	var err error
	if *file != "" {
		body, err = os.ReadFile(*file)
	} else {
		body, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}

	sig, err := service.NewHMACSignatureService().SignBytes(body, *secret)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, sig)
	return nil
}
