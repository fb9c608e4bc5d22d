package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/quotelib/internal/domain/catalog"
	"github.com/xiebiao/quotelib/internal/interface/http/handler"
	"github.com/xiebiao/quotelib/internal/interface/http/middleware"
	"github.com/xiebiao/quotelib/pkg/response"
)

// registerRoutes 注册全部路由
// 路由规划:
// - 读接口公开(列表/查询不需要登录)
// - 写接口(创建/更新/删除)都需要登录
// - 词表四组路由(genres/topics/tags/types)共用VocabHandler
func registerRoutes(
	r *gin.Engine,
	quoteHandler *handler.QuoteHandler,
	bookHandler *handler.BookHandler,
	vocabHandler *handler.VocabHandler,
	libraryHandler *handler.LibraryHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标端点
	// 访问 http://localhost:8080/metrics 查看指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 引文模块(核心)
		quotes := v1.Group("/quotes")
		{
			quotes.GET("", quoteHandler.List)
			quotes.GET("/:id", quoteHandler.GetByID)
			quotes.POST("", authMiddleware.RequireAuth(), quoteHandler.Create)
			quotes.PUT("/:id", authMiddleware.RequireAuth(), quoteHandler.Update)
			quotes.DELETE("/:id", authMiddleware.RequireAuth(), quoteHandler.Delete)
		}

		// 书目模块
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.Create)
		}

		// 词表模块:四组路由结构相同,循环注册
		vocabRoutes := []struct {
			path string
			kind catalog.Kind
		}{
			{"/genres", catalog.KindGenre},
			{"/topics", catalog.KindTopic},
			{"/tags", catalog.KindTag},
			{"/types", catalog.KindType},
		}
		for _, vr := range vocabRoutes {
			hs := vocabHandler.ForKind(vr.kind)
			group := v1.Group(vr.path)
			{
				group.GET("", hs.List)
				group.GET("/:id", hs.GetByID)
				group.GET("/name/:name", hs.GetByName)
				group.POST("", authMiddleware.RequireAuth(), hs.Create)
			}
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", libraryHandler.ListAuthors)
			authors.GET("/:id", libraryHandler.GetAuthor)
			authors.POST("", authMiddleware.RequireAuth(), libraryHandler.CreateAuthor)
		}

		// 出版社模块
		publishers := v1.Group("/publishers")
		{
			publishers.GET("", libraryHandler.ListPublishers)
			publishers.POST("", authMiddleware.RequireAuth(), libraryHandler.CreatePublisher)
		}

		// 地理模块
		countries := v1.Group("/countries")
		{
			countries.GET("", libraryHandler.ListCountries)
			countries.POST("", authMiddleware.RequireAuth(), libraryHandler.CreateCountry)
		}
		states := v1.Group("/states")
		{
			states.GET("", libraryHandler.ListStates)
			states.POST("", authMiddleware.RequireAuth(), libraryHandler.CreateState)
		}
		cities := v1.Group("/cities")
		{
			cities.GET("", libraryHandler.ListCities)
			cities.POST("", authMiddleware.RequireAuth(), libraryHandler.CreateCity)
		}
	}
}
