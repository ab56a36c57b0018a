package session

import (
	"sync"

	"github.com/MKhiriev/sterling-client/internal/logger"
)

// Routes understood by the client.
const (
	RouteLogin = "/login"
	RouteHome  = "/"
)

//go:generate mockgen -source=navigation.go -destination=../mock/navigation_mock.go -package=mock

// NavigationController moves the user interface to a route.
type NavigationController interface {
	Navigate(route string)
}

// ChannelNavigator delivers routes on a buffered channel consumed by the UI
// loop. When the buffer is full the oldest pending route is dropped, so the
// newest route always gets through.
type ChannelNavigator struct {
	mu     sync.Mutex
	routes chan string
}

// NewChannelNavigator returns a navigator with room for size pending routes.
// size below 1 is treated as 1.
func NewChannelNavigator(size int) *ChannelNavigator {
	if size < 1 {
		size = 1
	}
	return &ChannelNavigator{routes: make(chan string, size)}
}

// Navigate queues route without blocking.
func (n *ChannelNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for {
		select {
		case n.routes <- route:
			return
		default:
		}
		select {
		case <-n.routes:
		default:
		}
	}
}

// Routes returns the channel the UI reads navigation events from.
func (n *ChannelNavigator) Routes() <-chan string {
	return n.routes
}

// LogNavigator only records navigation. It is used when no UI is attached.
type LogNavigator struct {
	logger *logger.Logger
}

func NewLogNavigator(log *logger.Logger) *LogNavigator {
	return &LogNavigator{logger: log}
}

func (n *LogNavigator) Navigate(route string) {
	n.logger.Info().Str("func", "*LogNavigator.Navigate").Str("route", route).Msg("navigate")
}
