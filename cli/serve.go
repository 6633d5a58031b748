package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ellekaen/VanityOS-Api/config"
	"github.com/ellekaen/VanityOS-Api/data"
	"github.com/ellekaen/VanityOS-Api/routes"
	"github.com/ellekaen/VanityOS-Api/services"
	"github.com/ellekaen/VanityOS-Api/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the VanityOS HTTP API.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (VANITYOS_*, PORT, AWS_REGION, S3_*, DB_*)
3. Config file (--config)
4. Defaults`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "listen port")
	serveCmd.Flags().String("classifier", config.BackendAuto, "classifier backend: auto, onnx, rekognition, none")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("classifier.backend", serveCmd.Flags().Lookup("classifier"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	log, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	food, err := buildFoodService(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: routes.SetupRouter(food, routes.Options{
			APIKey:         cfg.APIKey,
			MaxUploadBytes: cfg.MaxUploadBytes,
			Version:        Version,
			Log:            log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("classifier", food.ClassifierName()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildFoodService wires tables, classifier and the optional archive/history.
func buildFoodService(ctx context.Context, cfg *config.Config, log *zap.Logger) (*services.FoodService, error) {
	catalog, err := services.NewIngredientCatalog(data.Ingredients())
	if err != nil {
		return nil, fmt.Errorf("ingredient table: %w", err)
	}
	verdicts, err := services.LoadVerdictMapper(cfg.FoodDBPath, data.AcneFoods)
	if err != nil {
		return nil, err
	}
	log.Info("tables loaded",
		zap.Int("ingredients", catalog.Len()),
		zap.Int("foods", len(verdicts.All())))

	deps := services.FoodDeps{
		Catalog:    catalog,
		Verdicts:   verdicts,
		Classifier: services.NewClassifier(ctx, cfg.Classifier, cfg.AWSRegion, log),
		TopK:       cfg.Classifier.TopK,
		Log:        log,
	}

	if cfg.Archive.Bucket != "" {
		awsCfg, err := utils.LoadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			log.Warn("image archive disabled", zap.Error(err))
		} else {
			deps.Archive = utils.NewS3Archive(utils.NewS3Client(awsCfg), cfg.Archive.Bucket, cfg.Archive.Prefix, cfg.Archive.PublicURL)
			log.Info("image archive enabled", zap.String("bucket", cfg.Archive.Bucket))
		}
	}

	if cfg.Database.Enabled() {
		db, err := config.OpenDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		deps.History = services.NewGormScanHistory(db)
		log.Info("scan history enabled", zap.String("db_host", cfg.Database.Host))
	}

	return services.NewFoodService(deps), nil
}
