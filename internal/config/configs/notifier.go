package configs

// Notifier configures the asynchronous notification fan-out worker. The
// queue is bounded: when full, new fan-out requests are dropped and logged
// rather than blocking the request that produced them.
type Notifier struct {
	// QueueSize is the capacity of the fan-out queue. Defaults to 256.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"256"`
}
