package persistence

//go:generate mockgen -destination=../mocks/mock_key_value_store.go -package=mocks lapwatch/persistence KeyValueStore

// KeyValueStore is the typed key/value surface the bridge persists
// through. Getters return def when the key is missing or holds a value
// of another type. Puts are staged until `Commit`.
type KeyValueStore interface {
	GetBool(key string, def bool) bool
	GetLong(key string, def int64) int64
	GetString(key string, def string) string
	PutBool(key string, value bool)
	PutLong(key string, value int64)
	PutString(key string, value string)
	Commit() error
}

// Keys written by `Bridge.Save`.
const (
	KeyRunning            = "running"
	KeyCommittedElapsed   = "committedElapsed"
	KeyLastLapBoundary    = "lastLapBoundary"
	KeyLapIndex           = "lapIndex"
	KeyNightMode          = "isNight"
	KeyEpoch              = "epoch"
	KeyLapStartUnixMillis = "lapStartUnixMillis"
	KeyLapRecords         = "lapRecords"
	KeySnapshotVersion    = "snapshotVersion"
)
