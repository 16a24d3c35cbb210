package services

// ServiceContainer carries every service the handlers depend on.
type ServiceContainer struct {
	PortfolioService PortfolioService
}
