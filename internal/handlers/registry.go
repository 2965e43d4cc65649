package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	JobHandler      *JobHandler
	EventHandler    *EventHandler
	UserHandler     *UserHandler
	TaxonomyHandler *TaxonomyHandler
	CompanyHandler  *CompanyHandler
}
