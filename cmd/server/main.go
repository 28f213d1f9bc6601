package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thebartekbanach/imglide/pkg/cache"
	"github.com/thebartekbanach/imglide/pkg/config"
	"github.com/thebartekbanach/imglide/pkg/logging"
	"github.com/thebartekbanach/imglide/pkg/request"
	"github.com/thebartekbanach/imglide/pkg/signature"
)

const shutdownTimeout = 30 * time.Second

var configPath string

var rootCmd = &cobra.Command{
	Use:           "imglide",
	Short:         "On-demand image transformation and cache server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the image server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg)
	},
}

var (
	signDisk   string
	signParams []string
)

var signCmd = &cobra.Command{
	Use:   "sign [image-path]",
	Short: "Print a signed URL of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.Secure.Secret == "" {
			return errors.New("secure.secret must be set to sign urls")
		}

		if err := checkDisk(cfg, signDisk); err != nil {
			return err
		}

		imagePath, err := request.CleanPath(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		params, err := parseParams(signParams)
		if err != nil {
			return err
		}

		signer := signature.NewSigner(cfg.Secure.Secret)
		fmt.Fprintln(cmd.OutOrStdout(), signer.BuildURL(cfg.BaseURL, signDisk, imagePath, params))
		return nil
	},
}

var purgeDisk string

var purgeCmd = &cobra.Command{
	Use:   "purge [image-path...]",
	Short: "Remove every cached transformation of the given images",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := checkDisk(cfg, purgeDisk); err != nil {
			return err
		}

		ctx := cmd.Context()
		cacheService, err := InitializeCache(ctx, cfg)
		if err != nil {
			return err
		}

		return purge(ctx, cmd, cacheService, purgeDisk, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the toml config file (default ./imglide.toml)")

	signCmd.Flags().StringVar(&signDisk, "disk", "", "disk the image lives on")
	signCmd.Flags().StringArrayVarP(&signParams, "param", "p", nil, "transformation parameter as key=value, repeatable")
	purgeCmd.Flags().StringVar(&purgeDisk, "disk", "", "disk the images live on")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(purgeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	cacheService, err := InitializeCache(ctx, cfg)
	if err != nil {
		return err
	}

	proxyService, err := InitializeProxy(ctx, cfg, cacheService)
	if err != nil {
		return err
	}

	var invalidationService cache.InvalidationService
	if cfg.Mongo.URI != "" {
		service, cleanup, err := InitializeInvalidator(ctx, cfg, cacheService)
		if err != nil {
			return err
		}
		defer cleanup()
		invalidationService = service
	} else {
		log.Info().Msg("mongo.uri not set, invalidation api disabled")
	}

	e := newRouter(cfg, proxyService, invalidationService)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("server started")
		serverErr <- e.Start(cfg.Server.Address)
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func purge(ctx context.Context, cmd *cobra.Command, cacheService cache.CacheService, disk string, imagePaths []string) error {
	for _, rawPath := range imagePaths {
		imagePath, err := request.CleanPath(rawPath)
		if err != nil {
			return fmt.Errorf("%s: %w", rawPath, err)
		}

		removed, err := cacheService.InvalidateAllEntriesForImage(ctx, disk, imagePath)
		if err != nil {
			return fmt.Errorf("cannot purge %s: %w", imagePath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries removed\n", imagePath, len(removed))
	}

	return nil
}

func checkDisk(cfg *config.Config, disk string) error {
	if disk == "" {
		return nil
	}

	if _, ok := cfg.Disks[disk]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDisk, disk)
	}

	return nil
}

func parseParams(raw []string) (url.Values, error) {
	params := url.Values{}
	for _, param := range raw {
		key, value, ok := strings.Cut(param, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, param)
		}
		params.Add(key, value)
	}

	return params, nil
}

var (
	ErrUnknownDisk  = errors.New("unknown disk")
	ErrInvalidParam = errors.New("parameter must have key=value form")
)
