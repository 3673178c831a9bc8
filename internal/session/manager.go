package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	cartdomain "github.com/freshfarm/storefront/internal/cart/domain"
	"github.com/freshfarm/storefront/internal/checkout"
	favdomain "github.com/freshfarm/storefront/internal/favorites/domain"
	"github.com/freshfarm/storefront/internal/pricing"
	"github.com/freshfarm/storefront/pkg/logger"
)

// Session owns the per-client state: one cart, one favorite set, one
// checkout orchestrator. Everything is explicitly constructed and injected;
// there are no ambient stores.
type Session struct {
	ID        string
	Cart      *cartdomain.Store
	Favorites *favdomain.Store
	Checkout  *checkout.Orchestrator
}

// Manager creates and resolves sessions by ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	favoritesRepo favdomain.Repository
	engine        *pricing.Engine
	submitter     checkout.OrderSubmitter
	payments      checkout.PaymentInitiator
	recorder      checkout.Recorder
}

// NewManager creates a session manager with the shared collaborators every
// session's stores are built from. recorder may be nil.
func NewManager(
	favoritesRepo favdomain.Repository,
	engine *pricing.Engine,
	submitter checkout.OrderSubmitter,
	payments checkout.PaymentInitiator,
	recorder checkout.Recorder,
) *Manager {
	return &Manager{
		sessions:      make(map[string]*Session),
		favoritesRepo: favoritesRepo,
		engine:        engine,
		submitter:     submitter,
		payments:      payments,
		recorder:      recorder,
	}
}

// Resolve returns the session for the given ID, creating it if needed. An
// empty ID mints a new session. The favorites load runs in the background;
// the set behaves as empty until it completes.
func (m *Manager) Resolve(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return s
		}
	} else {
		id = uuid.New().String()
	}

	cart := cartdomain.NewStore()
	favorites := favdomain.NewStore(m.favoritesRepo, "favorites:"+id)

	s := &Session{
		ID:        id,
		Cart:      cart,
		Favorites: favorites,
		Checkout:  checkout.New(cart, m.engine, m.submitter, m.payments, m.recorder),
	}
	m.sessions[id] = s

	go favorites.Load(context.Background())

	logger.Logger.Debug().Str("session_id", id).Msg("Session created")
	return s
}
