package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/quotelib/internal/application/book"
	appcatalog "github.com/xiebiao/quotelib/internal/application/catalog"
	applibrary "github.com/xiebiao/quotelib/internal/application/library"
	appquote "github.com/xiebiao/quotelib/internal/application/quote"
	appuser "github.com/xiebiao/quotelib/internal/application/user"
	"github.com/xiebiao/quotelib/internal/domain/user"
	"github.com/xiebiao/quotelib/internal/infrastructure/config"
	"github.com/xiebiao/quotelib/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/quotelib/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/quotelib/internal/interface/http/handler"
	"github.com/xiebiao/quotelib/internal/interface/http/middleware"
	"github.com/xiebiao/quotelib/pkg/jwt"
	"github.com/xiebiao/quotelib/pkg/metrics"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire注入器，
// 运行`wire gen ./cmd/api`后可切换到InitializeApp）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）
	// 依赖链：Repository ← Service/UseCase ← Handler

	// 基础设施层
	quoteRepo := mysql.NewQuoteRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	vocabRepo := mysql.NewVocabRepository(db)
	geoRepo := mysql.NewGeoRepository(db)
	userRepo := mysql.NewUserRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	viewCache := redis.NewViewCache(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	createQuoteUseCase := appquote.NewCreateQuoteUseCase(quoteRepo, bookRepo, txManager, viewCache)
	updateQuoteUseCase := appquote.NewUpdateQuoteUseCase(quoteRepo, bookRepo, txManager, viewCache)
	deleteQuoteUseCase := appquote.NewDeleteQuoteUseCase(quoteRepo, txManager, viewCache)
	listQuotesUseCase := appquote.NewListQuotesUseCase(quoteRepo, viewCache)
	createBookUseCase := appbook.NewCreateBookUseCase(bookRepo, publisherRepo, txManager)
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo)
	vocabUseCase := appcatalog.NewVocabUseCase(vocabRepo)
	authorUseCase := applibrary.NewAuthorUseCase(authorRepo)
	publisherUseCase := applibrary.NewPublisherUseCase(publisherRepo, txManager)
	geoUseCase := applibrary.NewGeoUseCase(geoRepo, txManager)
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)

	// 接口层
	quoteHandler := handler.NewQuoteHandler(createQuoteUseCase, updateQuoteUseCase, deleteQuoteUseCase, listQuotesUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase)
	vocabHandler := handler.NewVocabHandler(vocabUseCase)
	libraryHandler := handler.NewLibraryHandler(authorUseCase, publisherUseCase, geoUseCase)
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 7. 注册路由
	registerRoutes(r, quoteHandler, bookHandler, vocabHandler, libraryHandler, userHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   引文列表: GET http://localhost%s/api/v1/quotes\n", addr)
	fmt.Printf("   创建引文: POST http://localhost%s/api/v1/quotes (需要登录)\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
