package events

import "github.com/atomicstack/popup-menu/internal/logging"

type MenuTracer struct{}

type InputTracer struct{}

type ActionTracer struct{}

var (
	Menu   = MenuTracer{}
	Input  = InputTracer{}
	Action = ActionTracer{}
)

func (MenuTracer) Show(x, y int) {
	logging.Trace("menu.show", map[string]interface{}{"x": x, "y": y})
}

func (MenuTracer) Hide() {
	logging.Trace("menu.hide", nil)
}

func (MenuTracer) Add(slug, text string, replaced bool) {
	logging.Trace("menu.add", map[string]interface{}{"slug": slug, "text": text, "replaced": replaced})
}

func (MenuTracer) Remove(slug string) {
	logging.Trace("menu.remove", map[string]interface{}{"slug": slug})
}

func (MenuTracer) Select(slug string) {
	logging.Trace("menu.select", map[string]interface{}{"slug": slug})
}

func (MenuTracer) Move(direction, from, to string) {
	logging.Trace("menu.move", map[string]interface{}{"direction": direction, "from": from, "to": to})
}

func (MenuTracer) TypeAhead(query, match string) {
	logging.Trace("menu.typeahead", map[string]interface{}{"query": query, "match": match})
}

func (InputTracer) Bind(kind, owner string) {
	logging.Trace("input.bind", map[string]interface{}{"kind": kind, "owner": owner})
}

func (InputTracer) Unbind(kind, owner string) {
	logging.Trace("input.unbind", map[string]interface{}{"kind": kind, "owner": owner})
}

func (ActionTracer) Run(slug string, args []string) {
	logging.Trace("action.run", map[string]interface{}{"slug": slug, "args": args})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
