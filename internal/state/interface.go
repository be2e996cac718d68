package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
	ListSettings() ([]Setting, error)
	GetLevels() (*Levels, error)
	SaveLevels(l Levels) error
	QueueLevels(l Levels)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
