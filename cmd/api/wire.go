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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcart "github.com/xiebiao/bookpos/internal/application/cart"
	appcheckout "github.com/xiebiao/bookpos/internal/application/checkout"
	appinventory "github.com/xiebiao/bookpos/internal/application/inventory"
	appsales "github.com/xiebiao/bookpos/internal/application/sales"
	"github.com/xiebiao/bookpos/internal/domain/book"
	"github.com/xiebiao/bookpos/internal/domain/cart"
	"github.com/xiebiao/bookpos/internal/domain/sale"
	"github.com/xiebiao/bookpos/internal/infrastructure/config"
	"github.com/xiebiao/bookpos/internal/infrastructure/persistence/csvfile"
	"github.com/xiebiao/bookpos/internal/infrastructure/receipt"
	"github.com/xiebiao/bookpos/internal/interface/http/handler"
	"github.com/xiebiao/bookpos/internal/interface/http/middleware"
	"github.com/xiebiao/bookpos/pkg/metrics"
	"github.com/xiebiao/bookpos/pkg/response"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：配置加载、CSV仓储、小票生成器、购物车管理器
var infrastructureSet = wire.NewSet(
	config.Load,           // 加载配置文件
	provideBookRepository, // 库存表仓储(CSV)
	provideSaleRepository, // 销售表仓储(CSV)
	provideReceiptWriter,  // 小票生成器
	cart.NewManager,       // 会话购物车管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appinventory.NewAddBookUseCase,     // 新书入库用例
	appinventory.NewUpdateBookUseCase,  // 修改图书用例
	appinventory.NewRemoveBookUseCase,  // 图书下架用例
	appinventory.NewListBooksUseCase,   // 库存列表用例
	appinventory.NewGetBookUseCase,     // 图书详情用例
	appinventory.NewListTitlesUseCase,  // 书名列表用例
	appinventory.NewListAuthorsUseCase, // 作者列表用例
	appcart.NewAddToCartUseCase,        // 加入购物车用例
	appcart.NewViewCartUseCase,         // 查看购物车用例
	appcheckout.NewCheckoutUseCase,     // 结账用例
	appsales.NewListSalesUseCase,       // 销售历史用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,  // 库存处理器
	handler.NewCartHandler,  // 购物车处理器
	provideCheckoutHandler,  // 结账处理器(需要从config提取小票路径)
	handler.NewSaleHandler,  // 销售历史处理器
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 教学说明：
// 仓储构造函数的参数是文件路径字符串，Wire无法自动从Config提取，
// 所以需要手动编写Provider函数

// provideBookRepository 从配置创建库存表仓储
func provideBookRepository(cfg *config.Config) (book.Repository, error) {
	return csvfile.NewBookRepository(cfg.Data.InventoryPath())
}

// provideSaleRepository 从配置创建销售表仓储
func provideSaleRepository(cfg *config.Config) (sale.Repository, error) {
	return csvfile.NewSaleRepository(cfg.Data.SalesPath())
}

// provideReceiptWriter 从配置创建小票生成器
// 教学要点：结账用例依赖的是ReceiptWriter接口(消费方定义)，
// 这里把具体实现绑定上去
func provideReceiptWriter(cfg *config.Config) appcheckout.ReceiptWriter {
	return receipt.NewTextGenerator(cfg.Data.ReceiptPath())
}

// provideCheckoutHandler 创建结账处理器
// GET /receipt需要小票文件路径,从Config提取
func provideCheckoutHandler(uc *appcheckout.CheckoutUseCase, cfg *config.Config) *handler.CheckoutHandler {
	return handler.NewCheckoutHandler(uc, cfg.Data.ReceiptPath())
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	saleHandler *handler.SaleHandler,
) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Session(), gin.Recovery())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 库存模块
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.AddBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:title", bookHandler.GetBook)
			books.PUT("/:title", bookHandler.UpdateBook)
			books.DELETE("/:title", bookHandler.RemoveBook)
		}
		v1.GET("/titles", bookHandler.ListTitles)
		v1.GET("/authors", bookHandler.ListAuthors)

		// 购物车模块
		v1.POST("/cart/items", cartHandler.AddToCart)
		v1.GET("/cart", cartHandler.ViewCart)

		// 结账模块
		v1.POST("/checkout", checkoutHandler.Checkout)
		v1.GET("/receipt", checkoutHandler.GetReceipt)

		// 销售历史
		v1.GET("/sales", saleHandler.ListSales)
	}

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎
// 错误：任何依赖创建失败(如CSV表头不匹配)
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		// 基础设施层
		infrastructureSet,

		// 领域层
		domainSet,

		// 应用层
		applicationSet,

		// 接口层
		handlerSet,

		// Gin引擎
		provideGinEngine,
	)

	// 返回值是占位符，实际运行时由wire_gen.go生成的代码替代
	return nil, nil
}
