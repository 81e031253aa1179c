package main

import (
	"fmt"
	stdlog "log"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	appcart "github.com/xiebiao/bookpos/internal/application/cart"
	appcheckout "github.com/xiebiao/bookpos/internal/application/checkout"
	appinventory "github.com/xiebiao/bookpos/internal/application/inventory"
	appsales "github.com/xiebiao/bookpos/internal/application/sales"
	"github.com/xiebiao/bookpos/internal/domain/book"
	"github.com/xiebiao/bookpos/internal/domain/cart"
	"github.com/xiebiao/bookpos/internal/infrastructure/config"
	"github.com/xiebiao/bookpos/internal/infrastructure/persistence/csvfile"
	"github.com/xiebiao/bookpos/internal/infrastructure/receipt"
	"github.com/xiebiao/bookpos/internal/interface/http/handler"
	"github.com/xiebiao/bookpos/internal/interface/http/middleware"
	"github.com/xiebiao/bookpos/pkg/logger"
	"github.com/xiebiao/bookpos/pkg/metrics"
	"github.com/xiebiao/bookpos/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go里有等价的Wire配置，运行wire gen可生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志与指标
	logger.Setup(logger.Options{
		ServiceName: "bookpos",
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	metrics.Init()

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 库存表: %s\n", cfg.Data.InventoryPath())
	fmt.Printf("  - 销售表: %s\n", cfg.Data.SalesPath())

	// 3. 初始化CSV仓储(首次启动会创建带表头的空表)
	bookRepo, err := csvfile.NewBookRepository(cfg.Data.InventoryPath())
	if err != nil {
		stdlog.Fatalf("初始化库存表失败: %v", err)
	}
	saleRepo, err := csvfile.NewSaleRepository(cfg.Data.SalesPath())
	if err != nil {
		stdlog.Fatalf("初始化销售表失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	receiptWriter := receipt.NewTextGenerator(cfg.Data.ReceiptPath())
	carts := cart.NewManager()

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	addBookUseCase := appinventory.NewAddBookUseCase(bookService)
	updateBookUseCase := appinventory.NewUpdateBookUseCase(bookService)
	removeBookUseCase := appinventory.NewRemoveBookUseCase(bookService)
	listBooksUseCase := appinventory.NewListBooksUseCase(bookService)
	getBookUseCase := appinventory.NewGetBookUseCase(bookService)
	listTitlesUseCase := appinventory.NewListTitlesUseCase(bookService)
	listAuthorsUseCase := appinventory.NewListAuthorsUseCase(bookService)
	addToCartUseCase := appcart.NewAddToCartUseCase(bookService, carts)
	viewCartUseCase := appcart.NewViewCartUseCase(carts)
	checkoutUseCase := appcheckout.NewCheckoutUseCase(bookRepo, saleRepo, receiptWriter, carts)
	listSalesUseCase := appsales.NewListSalesUseCase(saleRepo)

	// 接口层
	bookHandler := handler.NewBookHandler(
		addBookUseCase,
		updateBookUseCase,
		removeBookUseCase,
		listBooksUseCase,
		getBookUseCase,
		listTitlesUseCase,
		listAuthorsUseCase,
	)
	cartHandler := handler.NewCartHandler(addToCartUseCase, viewCartUseCase)
	checkoutHandler := handler.NewCheckoutHandler(checkoutUseCase, cfg.Data.ReceiptPath())
	saleHandler := handler.NewSaleHandler(listSalesUseCase)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Session(), gin.Recovery())

	// 6. 注册路由
	registerRoutes(r, bookHandler, cartHandler, checkoutHandler, saleHandler)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   新书入库: POST http://localhost%s/api/v1/books\n", addr)
	fmt.Printf("   加入购物车: POST http://localhost%s/api/v1/cart/items\n", addr)
	fmt.Printf("   结账: POST http://localhost%s/api/v1/checkout\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("启动服务失败")
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	saleHandler *handler.SaleHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 库存模块
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.AddBook)             // ✅ 新书入库
			books.GET("", bookHandler.ListBooks)            // ✅ 库存列表
			books.GET("/:title", bookHandler.GetBook)       // ✅ 图书详情
			books.PUT("/:title", bookHandler.UpdateBook)    // ✅ 修改库存/价格
			books.DELETE("/:title", bookHandler.RemoveBook) // ✅ 图书下架
		}
		v1.GET("/titles", bookHandler.ListTitles)   // ✅ 书名列表
		v1.GET("/authors", bookHandler.ListAuthors) // ✅ 作者列表

		// 购物车模块(按会话隔离)
		v1.POST("/cart/items", cartHandler.AddToCart) // ✅ 加入购物车
		v1.GET("/cart", cartHandler.ViewCart)         // ✅ 查看购物车

		// 结账模块
		v1.POST("/checkout", checkoutHandler.Checkout)  // ✅ 结账
		v1.GET("/receipt", checkoutHandler.GetReceipt)  // ✅ 查看小票

		// 销售历史
		v1.GET("/sales", saleHandler.ListSales) // ✅ 销售历史
	}
}
