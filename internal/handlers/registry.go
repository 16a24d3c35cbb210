package handlers

// AppHandlers carries every handler of the application.
type AppHandlers struct {
	PortfolioHandler *PortfolioHandler
	FileHandler      *FileHandler
}
