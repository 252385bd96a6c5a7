package proto

import (
	"go.uber.org/fx"
)

// Module serves holonet.Holonet once something in the graph asks for
// *HolonetServerImpl.
var Module = fx.Provide(NewGRPCServer)
