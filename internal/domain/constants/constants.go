package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderSMTP = "smtp"
	MailProviderLog  = "log"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess = "access"
	TokenTypeReset  = "reset"
)

// Stock events
const (
	EventStockDepleted = "stock.depleted"
	EventRecordCreated = "record.created"
)

const (
	// RecentStocksLimit is the number of stocks returned by the recent-stocks listing.
	RecentStocksLimit = 5

	// SearchResultLimit caps product name searches.
	SearchResultLimit = 10

	// WorkDoneMaxRetries bounds the load-mutate-save retries on a stale staff version.
	WorkDoneMaxRetries = 3
)
