package config

import "time"

const (
	DriverDummy     = "dummy"
	DriverEtcd      = "etcd"
	DriverTarantool = "tcs"
)

type (
	Config struct {
		App       App       `json:"app"`
		Etcd      Etcd      `json:"etcd"`
		Tarantool Tarantool `json:"tarantool"`
		Logging   Logging   `json:"logging"`
	}

	App struct {
		ID     string `envconfig:"RECSTORE_APP_ID" default:"" json:"id"`
		Key    string `envconfig:"RECSTORE_APP_KEY" default:"" json:"key,omitempty"`
		Driver string `envconfig:"RECSTORE_DRIVER" default:"dummy" json:"driver"`
	}

	Etcd struct {
		Endpoints   []string      `envconfig:"ETCD_ENDPOINTS" default:"localhost:2379" json:"endpoints"`
		DialTimeout time.Duration `envconfig:"ETCD_DIAL_TIMEOUT" default:"5s" json:"dial_timeout"`
		Prefix      string        `envconfig:"ETCD_PREFIX" default:"/recstore/" json:"prefix"`
		Codec       string        `envconfig:"ETCD_CODEC" default:"msgpack" json:"codec"`
	}

	Tarantool struct {
		Addresses []string      `envconfig:"TARANTOOL_ADDRESS" default:"localhost:3301" json:"addresses"`
		User      string        `envconfig:"TARANTOOL_USER" default:"guest" json:"user"`
		Password  string        `envconfig:"TARANTOOL_PASSWORD" default:"" json:"password,omitempty"`
		Function  string        `envconfig:"TARANTOOL_FUNCTION" default:"recstore.execute" json:"function"`
		Timeout   time.Duration `envconfig:"TARANTOOL_TIMEOUT" default:"5s" json:"timeout"`
	}

	Logging struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"LOG_FORMAT" default:"console" json:"format"`
	}
)
