package routes

import (
	"bathroom_quote_saver/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathSuppliers = "/suppliers"
	PathProjects  = "/projects"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	supplierHandler *handlers.SupplierHandler,
	projectHandler *handlers.ProjectHandler,
	documentHandler *handlers.DocumentHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/request", quoteHandler.CreateQuoteRequest)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/adjust", quoteHandler.AdjustQuote)
		quotes.POST("/:quote_id/generate-proposal", documentHandler.GenerateProposal)
		quotes.POST("/:quote_id/generate-quote-summary", documentHandler.GenerateQuoteSummary)
		quotes.POST("/:quote_id/send-email", documentHandler.SendQuoteEmail)
	}

	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("/:component", supplierHandler.GetSuppliers)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("/save", projectHandler.SaveProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/categories", projectHandler.GetCategories)
		projects.PUT("/:project_id", projectHandler.UpdateProject)
		projects.DELETE("/:project_id", projectHandler.DeleteProject)
		projects.GET("/:project_id/quote", projectHandler.GetProjectQuote)
	}
}
