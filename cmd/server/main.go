package main

import (
	"context"
	"database/sql"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"sort"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/django/v3"
	"github.com/goliatone/go-router"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/leha-maslennikov/backend-app"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	db, err := openDB(cfg.DBURI)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	repo := auth.NewRepositoryManager(db)
	repo.MustValidate()

	logins := auth.NewLoginService(repo.Users(), auth.NewBcryptHasher(auth.DefaultHashCost), nil)
	codec := auth.NewJWTCodec([]byte(cfg.GetSigningKey()), nil)
	tokens := auth.NewTokenService(repo.TokenVersions(), codec, nil)

	if _, err := auth.EnsureRootUser(ctx, logins, cfg.RootLogin, cfg.RootPassword); err != nil {
		log.Fatalf("root bootstrap: %v", err)
	}

	engine := django.New("./views", ".html")

	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			UnescapePath:      true,
			StrictRouting:     false,
			PassLocalsToViews: true,
			Views:             engine,
		}))
	})

	auth.RegisterAuthRoutes(srv.Router().Group("/"),
		auth.WithAuthConfig(cfg),
		func(ac *auth.AuthController) *auth.AuthController {
			ac.Login = logins
			ac.Tokens = tokens
			return ac
		},
	)

	srv.Router().Get("/", func(ctx router.Context) error {
		return ctx.Status(http.StatusOK).SendString("authenticated")
	})

	srv.Serve(cfg.Addr())

	waitExitSignal()
}

func openDB(uri string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, uri)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// migrate applies the embedded DDL in file order. Statements are written to
// be re-runnable so startup stays idempotent.
func migrate(ctx context.Context, db *bun.DB) error {
	root := "data/sql/migrations"
	migrations := auth.GetMigrationsFS()

	entries, err := fs.ReadDir(migrations, root)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		ddl, err := fs.ReadFile(migrations, path.Join(root, name))
		if err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
			return err
		}
	}

	return nil
}

func waitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
