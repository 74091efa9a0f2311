package snowflake

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

func init() {
	node, _ = snowflake.NewNode(1)
}

// SetNode 인스턴스를 여러 대 띄우면 각자 다른 번호(0~1023)를 써야 한다
func SetNode(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

func GenID() int64 {
	mu.RLock()
	defer mu.RUnlock()
	return node.Generate().Int64()
}

// GenFileName 저장용 파일 이름. ext 는 점을 포함한다 (".png")
func GenFileName(ext string) string {
	return strconv.FormatInt(GenID(), 10) + ext
}
