package clients

import (
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewGRPCConn создаёт ленивое соединение: сеть открывается при первом вызове.
func NewGRPCConn(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // сервис классификации доступен только во внутренней сети
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return conn, nil
}
