// Command token mints a bearer token for the users API using the same
// sign key, issuer and duration the server is configured with.
//
//	APP_TOKEN_SIGN_KEY=secret go run ./cmd/token -sub ops
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
)

func main() {
	log := logger.NewLogger("token")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}
}

// run parses args, reads the app config from the environment and writes
// one signed token to out.
func run(args []string, out io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("sub", "operator", "token subject")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.GetAppConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	token, err := service.NewAuthService(*cfg, log).CreateToken(context.Background(), *subject)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token.String())
	return err
}
