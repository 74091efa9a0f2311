package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// NodeID snowflake 노드 번호, 인스턴스마다 달라야 한다
	NodeID int64 `json:"node_id" yaml:"node_id"`
}
