package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pesocar/gip-registry/internal/config"
	"github.com/pesocar/gip-registry/internal/database"
	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/handler"
	"github.com/pesocar/gip-registry/internal/logger"
	"github.com/pesocar/gip-registry/internal/repository"
	"github.com/pesocar/gip-registry/internal/search"
	"github.com/pesocar/gip-registry/internal/service"
	"github.com/pesocar/gip-registry/pkg/rosterxls"
)

// App wires the registry service: config, storage backend, optional search
// index, the lifecycle service and the HTTP surface.
type App struct {
	Echo *echo.Echo

	db       *sql.DB           // set when the postgres backend is selected
	dsClient *datastore.Client // set when the datastore backend is selected
}

func NewApp() *App {
	return &App{Echo: echo.New()}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	logger.InitLogging(cfg.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	repo, err := a.buildRepository(ctx)
	if err != nil {
		return err
	}

	var index domain.RecordIndex
	if cfg.ELASTIC_URL != "" {
		es, err := search.NewElasticIndex(cfg.ELASTIC_URL)
		if err != nil {
			return fmt.Errorf("failed to initialize search index: %w", err)
		}
		index = es
		logger.InfoLog(ctx, "Search index enabled at %s", cfg.ELASTIC_URL)
	}

	exporter, err := buildExporter(cfg.EXPORT_TEMPLATE_PATH)
	if err != nil {
		return err
	}

	svc := service.NewRecordService(repo, index)
	recHandler := handler.NewRecordHandler(svc)
	xferHandler := handler.NewTransferHandler(svc, exporter)

	a.RegisterMiddlewares()
	a.RegisterRoutes(recHandler, xferHandler)

	return nil
}

func (a *App) buildRepository(ctx context.Context) (domain.RecordRepository, error) {
	cfg := config.DefaultEnvConfig

	switch cfg.STORAGE_BACKEND {
	case "postgres":
		db, err := database.NewPostgresDB(ctx, database.Config{
			Host:            cfg.DB_HOST,
			Port:            cfg.DB_PORT,
			User:            cfg.DB_USER,
			Password:        cfg.DB_PASSWORD,
			DBName:          cfg.DB_NAME,
			SSLMode:         cfg.DB_SSL_MODE,
			MaxOpenConns:    cfg.DB_MAX_OPEN_CONNS,
			MaxIdleConns:    cfg.DB_MAX_IDLE_CONNS,
			ConnMaxLifetime: cfg.DB_CONN_MAX_LIFETIME,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		repo := repository.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		logger.InfoLog(ctx, "Postgres storage backend ready")
		return repo, nil

	case "datastore":
		client, err := datastore.NewClient(ctx, cfg.DATASTORE_PROJECT_ID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize datastore: %w", err)
		}
		a.dsClient = client
		logger.InfoLog(ctx, "Datastore storage backend ready (project %s)", cfg.DATASTORE_PROJECT_ID)
		return repository.NewDatastoreRepository(client), nil

	default:
		logger.WarnLog(ctx, "Using in-memory storage backend; records will not survive a restart")
		return repository.NewMemoryRepository(), nil
	}
}

func buildExporter(templatePath string) (*rosterxls.Exporter, error) {
	if templatePath == "" {
		return rosterxls.NewExporter(), nil
	}
	f, err := os.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open export template: %w", err)
	}
	defer f.Close()

	tmpl, err := rosterxls.LoadTemplate(f)
	if err != nil {
		return nil, err
	}
	return rosterxls.NewExporterFromTemplate(tmpl), nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(rec *handler.RecordHandler, xfer *handler.TransferHandler) {
	a.Echo.POST("/records", rec.CreateHandler)
	a.Echo.GET("/records", rec.ListHandler)
	a.Echo.GET("/records/summary", rec.SummaryHandler)
	a.Echo.GET("/records/search", rec.SearchHandler)
	a.Echo.GET("/records/export", xfer.ExportHandler)
	a.Echo.POST("/records/import", xfer.ImportHandler)
	a.Echo.GET("/records/:id", rec.GetHandler)
	a.Echo.PUT("/records/:id", rec.UpdateHandler)
	a.Echo.DELETE("/records/:id", rec.DeleteHandler)
	a.Echo.GET("/records/:id/experience", rec.ExperienceHandler)
	a.Echo.GET("/records/:id/form", rec.FormHandler)
}

func (a *App) Run() error {
	defer a.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}

// Close releases whichever storage client the backend selection opened.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.dsClient != nil {
		a.dsClient.Close()
	}
}
