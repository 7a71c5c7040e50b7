package router

import (
	"github.com/alkimer/expenses/internal/config"
	"github.com/alkimer/expenses/internal/extract"
	"github.com/alkimer/expenses/internal/handler"
	"github.com/alkimer/expenses/internal/middleware"
	"github.com/alkimer/expenses/internal/service"
	"github.com/alkimer/expenses/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Setup configures the Gin engine and wires every API route.
func Setup(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLog(log), gin.Recovery())

	statements := store.NewStatementStore(db)
	merchants := store.NewMerchantStore(db)
	transactions := store.NewTransactionStore(db)
	categories := store.NewCategoryStore(db)
	sums := store.NewSumStore(db)
	export := store.NewExportStore(db)

	extractor := extract.NewPDFToText(cfg.Extractor.Binary)
	imports := service.NewImportService(log, statements, merchants, transactions, extractor)
	expenses := service.NewExpenseService(statements, merchants, transactions)

	api := r.Group("/api")

	statementHandler := handler.NewStatementHandler(imports, statements, transactions, cfg.Upload.Dir)
	api.POST("/statements/import", statementHandler.Import)
	api.GET("/statements", statementHandler.List)
	api.PUT("/statements/:id", statementHandler.Update)
	api.DELETE("/statements/:id", statementHandler.Delete)
	api.GET("/statements/:id/transactions", statementHandler.ListTransactions)

	categoryHandler := handler.NewCategoryHandler(categories)
	api.POST("/categories", categoryHandler.Create)
	api.GET("/categories", categoryHandler.List)
	api.DELETE("/categories/:id", categoryHandler.Delete)

	merchantHandler := handler.NewMerchantHandler(merchants)
	api.GET("/merchants", merchantHandler.List)
	api.PUT("/merchants/:id/category", merchantHandler.SetCategory)

	sumHandler := handler.NewSumHandler(sums)
	api.GET("/statements/:id/sums", sumHandler.ForStatement)
	api.GET("/sums", sumHandler.ForAll)

	expenseHandler := handler.NewExpenseHandler(expenses)
	api.POST("/expenses", expenseHandler.Add)
	api.GET("/expenses", expenseHandler.List)
	api.DELETE("/expenses/:id", expenseHandler.Delete)

	exportHandler := handler.NewExportHandler(export)
	api.GET("/export/xlsx", exportHandler.Xlsx)

	return r
}
