package packet

import (
	"log"
	"os"

	jp "github.com/go-mclib/protocol/java_protocol"
)

// Module is a packet handling component of one player connection.
type Module interface {
	// Name returns a unique key for this module (e.g. "menu", "mirror").
	Name() string
	// HandlePacket is called for every incoming packet.
	HandlePacket(pkt *jp.WirePacket)
	// Reset is called on reconnect to clear module state.
	Reset()
}

// Handler is a lightweight packet callback for one-off matching.
type Handler func(pkt *jp.WirePacket)

// Router fans incoming packets of one connection out to its modules.
type Router struct {
	Logger *log.Logger

	modules       []Module
	modulesByName map[string]Module
	handlers      []Handler
}

func NewRouter() *Router {
	return &Router{
		Logger:        log.New(os.Stdout, "", log.LstdFlags),
		modulesByName: make(map[string]Module),
	}
}

// Register adds a module to the router. Panics on duplicate name.
func (r *Router) Register(m Module) {
	if _, exists := r.modulesByName[m.Name()]; exists {
		panic("module already registered: " + m.Name())
	}
	r.modules = append(r.modules, m)
	r.modulesByName[m.Name()] = m
}

// Module returns a registered module by name, or nil.
func (r *Router) Module(name string) Module {
	return r.modulesByName[name]
}

// RegisterHandler appends a lightweight packet callback.
func (r *Router) RegisterHandler(h Handler) {
	r.handlers = append(r.handlers, h)
}

// Dispatch hands pkt to every module, then to every handler.
func (r *Router) Dispatch(pkt *jp.WirePacket) {
	for _, m := range r.modules {
		m.HandlePacket(pkt)
	}
	for _, h := range r.handlers {
		h(pkt)
	}
}

// Reset resets every module, e.g. after the connection was re-established.
func (r *Router) Reset() {
	for _, m := range r.modules {
		m.Reset()
	}
}

// From returns the menu provider registered on r, or nil.
func From(r *Router) *Provider {
	mod := r.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Provider)
}
