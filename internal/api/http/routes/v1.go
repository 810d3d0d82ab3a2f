package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	aihttp "github.com/growcircle/growcircle-backend/internal/ai/http"
	"github.com/growcircle/growcircle-backend/internal/ai/service"
	"github.com/growcircle/growcircle-backend/internal/auth"
	authhttp "github.com/growcircle/growcircle-backend/internal/auth/http"
	authmw "github.com/growcircle/growcircle-backend/internal/auth/middleware"
	"github.com/growcircle/growcircle-backend/internal/calendar"
	feedhttp "github.com/growcircle/growcircle-backend/internal/feed/http"
	feedrepo "github.com/growcircle/growcircle-backend/internal/feed/repository"
	feedservice "github.com/growcircle/growcircle-backend/internal/feed/service"
	libcache "github.com/growcircle/growcircle-backend/internal/library/cache"
	libhttp "github.com/growcircle/growcircle-backend/internal/library/http"
	librepo "github.com/growcircle/growcircle-backend/internal/library/repository"
	libservice "github.com/growcircle/growcircle-backend/internal/library/service"
	"github.com/growcircle/growcircle-backend/internal/media"
	msghttp "github.com/growcircle/growcircle-backend/internal/messages/http"
	msgrepo "github.com/growcircle/growcircle-backend/internal/messages/repository"
	profhttp "github.com/growcircle/growcircle-backend/internal/profiles/http"
	profrepo "github.com/growcircle/growcircle-backend/internal/profiles/repository"
)

type V1Deps struct {
	Firebase    *auth.FirebaseClients
	Redis       *redis.Client
	Generator   service.Generator
	GeminiModel string
	BucketName  string
}

func RegisterV1(r *gin.Engine, dep V1Deps) error {
	api := r.Group("/api/v1")
	api.Use(authmw.FirebaseAuthMiddleware(dep.Firebase.Auth))

	fs := dep.Firebase.Firestore

	// AI flows
	aiHandler := aihttp.NewHandler(
		service.NewStrainService(dep.Generator, dep.GeminiModel),
		service.NewDiagnoseService(dep.Generator, dep.GeminiModel),
		service.NewChatService(dep.Generator, dep.GeminiModel),
	)
	aiHandler.RegisterRoutes(api)

	// Profiles + follow graph
	profileRepo := profrepo.NewProfileRepository(fs)
	profhttp.NewHandler(profileRepo).RegisterRoutes(api)

	// Feed
	postRepo := feedrepo.NewPostRepository(fs)
	feedhttp.NewHandler(postRepo, feedservice.NewFeedService(postRepo, profileRepo)).RegisterRoutes(api)

	// Direct messages
	msghttp.NewHandler(msgrepo.NewConversationRepository(fs)).RegisterRoutes(api)

	// Cultivation calendar
	calendar.NewHandler(calendar.NewRepo(fs)).RegisterRoutes(api)

	// Content library (reads cached in redis)
	libraryService := libservice.NewLibraryService(
		librepo.NewArticleRepository(fs),
		libcache.NewArticleCache(dep.Redis),
	)
	libHandler := libhttp.NewHandler(libraryService)
	libHandler.RegisterRoutes(api)

	// Media uploads
	uploader, err := media.NewUploader(dep.Firebase.Storage, dep.BucketName)
	if err != nil {
		return err
	}
	media.NewHandler(uploader).RegisterRoutes(api)

	// Admin surface: impersonation and library writes
	admin := api.Group("/admin")
	admin.Use(authmw.RequireAdmin())
	authhttp.NewAdminHandler(auth.NewImpersonationService(dep.Firebase.Auth, fs)).RegisterAdminRoutes(admin)
	libHandler.RegisterAdminRoutes(admin)

	return nil
}
