package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"cms_backend/internal/app/router"
	articleadapters "cms_backend/internal/feature/articles/adapters"
	articlehandler "cms_backend/internal/feature/articles/transport/handler"
	articleusecase "cms_backend/internal/feature/articles/usecase"
	authadapters "cms_backend/internal/feature/auth/adapters"
	authhandler "cms_backend/internal/feature/auth/transport/handler"
	authmw "cms_backend/internal/feature/auth/transport/middleware"
	authusecase "cms_backend/internal/feature/auth/usecase"
	contactadapters "cms_backend/internal/feature/contact/adapters"
	contacthandler "cms_backend/internal/feature/contact/transport/handler"
	contactusecase "cms_backend/internal/feature/contact/usecase"
	contentadapters "cms_backend/internal/feature/content/adapters"
	contenthandler "cms_backend/internal/feature/content/transport/handler"
	contentusecase "cms_backend/internal/feature/content/usecase"
	documentadapters "cms_backend/internal/feature/documents/adapters"
	documenthandler "cms_backend/internal/feature/documents/transport/handler"
	documentusecase "cms_backend/internal/feature/documents/usecase"
	memberadapters "cms_backend/internal/feature/members/adapters"
	memberhandler "cms_backend/internal/feature/members/transport/handler"
	memberusecase "cms_backend/internal/feature/members/usecase"
	projectadapters "cms_backend/internal/feature/projects/adapters"
	projecthandler "cms_backend/internal/feature/projects/transport/handler"
	projectusecase "cms_backend/internal/feature/projects/usecase"
	seedhandler "cms_backend/internal/feature/seed/transport/handler"
	seedusecase "cms_backend/internal/feature/seed/usecase"
	statsadapters "cms_backend/internal/feature/stats/adapters"
	statshandler "cms_backend/internal/feature/stats/transport/handler"
	statsusecase "cms_backend/internal/feature/stats/usecase"
	"cms_backend/internal/platform/cache"
	"cms_backend/internal/platform/config"
	platformdb "cms_backend/internal/platform/db"
	platformjwt "cms_backend/internal/platform/jwt"
	platformredis "cms_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set. Set a strong secret before starting.")
	}

	// db
	db, err := platformdb.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	// Redis (optional)
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		slog.Warn("Redis not configured. Running without cache.")
	} else if tmp, err := platformredis.NewClient(cfg.Redis); err != nil {
		slog.Warn("Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Token issuer
	issuer := platformjwt.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expiration)

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	projectRepo := projectadapters.NewProjectRepository(db)
	articleRepo := articleadapters.NewArticleRepository(db)
	memberRepo := memberadapters.NewMemberRepository(db)
	documentRepo := documentadapters.NewDocumentRepository(db)
	messageRepo := contactadapters.NewMessageRepository(db)
	snippetRepo := contentadapters.NewSnippetRepository(db)
	statsRepo := statsadapters.NewStatsRepository(db)

	// Public stats change slowly; a short cache absorbs homepage traffic.
	cachedStatsRepo := cache.NewCachingStatsRepository(rdb, 0, statsRepo, "stats:public")

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	projectUC := projectusecase.NewProjectUsecase(projectRepo)
	articleUC := articleusecase.NewArticleUsecase(articleRepo)
	memberUC := memberusecase.NewMemberUsecase(memberRepo)
	documentUC := documentusecase.NewDocumentUsecase(documentRepo)
	contactUC := contactusecase.NewContactUsecase(messageRepo)
	contentUC := contentusecase.NewContentUsecase(snippetRepo)
	statsUC := statsusecase.NewStatsUsecase(cachedStatsRepo)
	seedUC := seedusecase.NewSeedUsecase(db)

	// Handlers
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Projects:  projecthandler.NewProjectHandler(projectUC),
		Articles:  articlehandler.NewArticleHandler(articleUC),
		Members:   memberhandler.NewMemberHandler(memberUC),
		Documents: documenthandler.NewDocumentHandler(documentUC),
		Contact:   contacthandler.NewContactHandler(contactUC),
		Content:   contenthandler.NewContentHandler(contentUC),
		Stats:     statshandler.NewStatsHandler(statsUC),
		Seed:      seedhandler.NewSeedHandler(seedUC),
	}

	engine := router.New(handlers,
		authmw.Authenticated(issuer, authUC),
		authmw.AdminOnly(),
		cfg.CORSOrigins,
	)

	if err := engine.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
