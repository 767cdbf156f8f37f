// Package cli implements the bagbank operator command line. It signs in through the same
// session store as the web panel, keeping the durable area in a file under the home directory.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/config"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/bagbankapi"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/filestore"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/memstore"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

const (
	// cliSessionID addresses the operator's keys in the session file.
	cliSessionID  = "cli"
	cliDurableTTL = 720 * time.Hour
)

// Options configures the root command. Zero values use the process defaults.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Environment replaces the process environment when reading BAGBANK_ variables.
	Environment map[string]string
	// Transport overrides the round tripper used for API calls.
	Transport http.RoundTripper
	// ReadPassword reads a password without echo.
	ReadPassword func() ([]byte, error)
}

type app struct {
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
	environment  map[string]string
	transport    http.RoundTripper
	readPassword func() ([]byte, error)

	flagAPI         string
	flagSessionFile string
	flagLogLevel    string
	flagJSON        bool

	logger     *slog.Logger
	session    *session.Store
	attributes *service.AttributeService
	suppliers  *service.SupplierService
	products   *service.ProductService
}

// NewRootCmd creates the root cobra command for the bagbank CLI.
func NewRootCmd(opts Options) *cobra.Command {
	a := newApp(opts)

	root := &cobra.Command{
		Use:   "bagbank",
		Short: "BagBank catalog administration",
		Long:  "Sign in to the BagBank API and inspect or delete attributes, suppliers and products.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.flagAPI, "api", "", "BagBank API base URL (or BAGBANK_API_BASE_URL env)")
	root.PersistentFlags().StringVar(&a.flagSessionFile, "session-file", "", "Session file (default ~/.bagbank/session.json)")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.flagJSON, "json", false, "Print JSON instead of tables")

	root.AddCommand(
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newWhoamiCmd(),
		a.newAttributesCmd(),
		a.newSuppliersCmd(),
		a.newProductsCmd(),
	)
	return root
}

func newApp(opts Options) *app {
	a := &app{
		in:           opts.In,
		out:          opts.Out,
		errOut:       opts.Err,
		environment:  opts.Environment,
		transport:    opts.Transport,
		readPassword: opts.ReadPassword,
	}
	if a.in == nil {
		a.in = os.Stdin
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.errOut == nil {
		a.errOut = os.Stderr
	}
	if a.readPassword == nil {
		a.readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
	}
	return a
}

// loadAPIConfig reads the BAGBANK_ variables the web server also uses.
func (a *app) loadAPIConfig() (config.APIConfig, error) {
	var cfg config.APIConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BAGBANK_", Environment: a.environment}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if a.flagAPI != "" {
		cfg.BaseURL = a.flagAPI
	}
	cfg.Sanitize()
	return cfg, nil
}

// connect builds the API client and opens the operator's session.
func (a *app) connect(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: parseLevel(a.flagLogLevel)}))

	apiCfg, err := a.loadAPIConfig()
	if err != nil {
		return err
	}
	client, err := bagbankapi.NewClient(bagbankapi.Config{
		BaseURL:           apiCfg.BaseURL,
		Timeout:           apiCfg.Timeout(),
		ErrorMessagePaths: apiCfg.ErrorMessagePath,
		Transport:         a.transport,
		Logger:            a.logger,
	})
	if err != nil {
		return err
	}

	path := a.flagSessionFile
	if path == "" {
		if path, err = filestore.DefaultPath(); err != nil {
			return err
		}
	}
	a.session, err = session.NewStore(session.Options{
		ID:           cliSessionID,
		Auth:         client,
		Durable:      filestore.New(path),
		Ephemeral:    memstore.New(),
		TokenKey:     apiCfg.TokenKey,
		UserKey:      apiCfg.UserKey,
		DurableTTL:   cliDurableTTL,
		EphemeralTTL: cliDurableTTL,
		Logger:       a.logger,
	})
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	a.session.Init(ctx)
	if err := a.session.Wait(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	catalog := bagbankapi.NewCatalog(client)
	a.attributes = service.NewAttributeService(service.AttributeServiceOptions{API: catalog, Logger: a.logger})
	a.suppliers = service.NewSupplierService(service.SupplierServiceOptions{API: catalog.Suppliers(), Logger: a.logger})
	a.products = service.NewProductService(service.ProductServiceOptions{
		API:     catalog.Products(),
		Lookups: service.ProductLookups{Attributes: catalog, Suppliers: catalog.Suppliers()},
		Logger:  a.logger,
	})
	return nil
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn
	}
	return l
}

var errNotSignedIn = errors.New("not signed in; run `bagbank login` first")
