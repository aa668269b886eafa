package logging

import (
	"go.uber.org/zap"
)

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// Init configura o logger global. Em produção usa o encoder JSON do
// zap; em desenvolvimento o console colorido.
func Init(env string) {
	var (
		logger *zap.Logger
		err    error
	)

	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// Fallback para pacotes que logam antes do Init (testes).
	Init("development")
}
