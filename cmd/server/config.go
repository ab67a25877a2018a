package main

import "time"

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	LogLevel             string        `env:"LOG_LEVEL,default=info"`
	BufferSize           int           `env:"BUFFER_SIZE,default=256"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=32"`
	RoomCodeLength       int           `env:"ROOM_CODE_LENGTH,default=6"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	TimelineCapacity     int           `env:"TIMELINE_CAPACITY,default=500"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	RoomIdleTTL          time.Duration `env:"ROOM_IDLE_TTL,default=30m"`
	ReapInterval         time.Duration `env:"REAP_INTERVAL,default=5m"`
	SessionSecret        string        `env:"SESSION_SECRET,required=true"`
	SessionDuration      time.Duration `env:"SESSION_DURATION,default=12h"`
	CSRFKey              string        `env:"CSRF_KEY,required=true"`
	CSRFSecure           bool          `env:"CSRF_SECURE,default=false"`
}
