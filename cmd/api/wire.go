//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
	pkgmetrics "github.com/xiebiao/quotelib/pkg/metrics"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：配置加载、数据库连接、Redis连接
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
// 包含：所有Repository的构造函数与事务管理器
var repositorySet = wire.NewSet(
	mysql.NewQuoteRepository,     // 引文仓储
	mysql.NewBookRepository,      // 书目仓储
	mysql.NewAuthorRepository,    // 作者仓储
	mysql.NewPublisherRepository, // 出版社仓储
	mysql.NewVocabRepository,     // 词表仓储
	mysql.NewGeoRepository,       // 地理仓储
	mysql.NewUserRepository,      // 用户仓储
	mysql.NewTxManager,           // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService, // 用户领域服务
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appquote.NewCreateQuoteUseCase,  // 创建引文用例
	appquote.NewUpdateQuoteUseCase,  // 更新引文用例
	appquote.NewDeleteQuoteUseCase,  // 删除引文用例
	appquote.NewListQuotesUseCase,   // 引文聚合读用例
	appbook.NewCreateBookUseCase,    // 创建书目用例
	appbook.NewListBooksUseCase,     // 书目列表用例
	appcatalog.NewVocabUseCase,      // 词表用例
	applibrary.NewAuthorUseCase,     // 作者用例
	applibrary.NewPublisherUseCase,  // 出版社用例
	applibrary.NewGeoUseCase,        // 地理用例
	appuser.NewRegisterUseCase,      // 用户注册用例
	appuser.NewLoginUseCase,         // 用户登录用例
	appuser.NewLogoutUseCase,        // 用户登出用例
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（需要从config提取参数）
	provideSessionStore,          // Session存储
	provideViewCache,             // 引文聚合读缓存
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewQuoteHandler,   // 引文处理器
	handler.NewBookHandler,    // 书目处理器
	handler.NewVocabHandler,   // 词表处理器
	handler.NewLibraryHandler, // 目录处理器
	handler.NewUserHandler,    // 用户处理器
)

// bindingSet 接口绑定
// 教学要点：应用层依赖的是自己声明的小接口（Transactor/ViewCache），
// Wire无法自动推断"*mysql.TxManager实现了appquote.Transactor"，
// 需要用wire.Bind显式声明
var bindingSet = wire.NewSet(
	wire.Bind(new(appquote.Transactor), new(*mysql.TxManager)),
	wire.Bind(new(appbook.Transactor), new(*mysql.TxManager)),
	wire.Bind(new(applibrary.Transactor), new(*mysql.TxManager)),
	wire.Bind(new(appquote.ViewCache), new(*redis.ViewCache)),
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideViewCache 从Redis客户端创建引文聚合读缓存
func provideViewCache(client *goredis.Client) *redis.ViewCache {
	return redis.NewViewCache(client)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	quoteHandler *handler.QuoteHandler,
	bookHandler *handler.BookHandler,
	vocabHandler *handler.VocabHandler,
	libraryHandler *handler.LibraryHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	pkgmetrics.InitMetrics()

	r := gin.Default()
	r.Use(middleware.Metrics())

	// 路由注册与main.go共用同一个registerRoutes
	registerRoutes(r, quoteHandler, bookHandler, vocabHandler, libraryHandler, userHandler, authMiddleware)

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎
//
// 依赖链示例：
// *gin.Engine 需要 → *handler.QuoteHandler
// *handler.QuoteHandler 需要 → *appquote.CreateQuoteUseCase
// *appquote.CreateQuoteUseCase 需要 → quote.Repository + appquote.Transactor
// quote.Repository 需要 → *gorm.DB
// *gorm.DB 需要 → *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		// 基础设施层
		infrastructureSet,

		// 仓储层
		repositorySet,

		// 领域层
		domainSet,

		// 应用层
		applicationSet,

		// 中间件层
		middlewareSet,

		// 接口绑定
		bindingSet,

		// 接口层
		handlerSet,

		// Gin引擎
		provideGinEngine,
	)

	// 返回值是占位符，实际运行时会被wire_gen.go替代
	return nil, nil
}
