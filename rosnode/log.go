package rosnode

import (
	modular "github.com/edwinhayes/logrus-modular"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/sirupsen/logrus"
)

// Module names used under the node's logger.
const (
	AdapterModule    = "rosnode"
	ControllerModule = "controller"
)

// ModuleLogger returns the named child of the node's logger, creating it at
// info level. Raising the node's level with SetLevel propagates to it.
func ModuleLogger(node ros.Node, name string) modular.ModuleLogger {
	return (*node.Logger()).GetOrCreateChild(name, logrus.InfoLevel)
}
