package declui

// Default trigger names inherited by every component spec.
const (
	OnFocus       = "on_focus"
	OnBlur        = "on_blur"
	OnClick       = "on_click"
	OnContextMenu = "on_context_menu"
	OnDoubleClick = "on_double_click"
	OnMouseDown   = "on_mouse_down"
	OnMouseEnter  = "on_mouse_enter"
	OnMouseLeave  = "on_mouse_leave"
	OnMouseMove   = "on_mouse_move"
	OnMouseOut    = "on_mouse_out"
	OnMouseOver   = "on_mouse_over"
	OnMouseUp     = "on_mouse_up"
	OnScroll      = "on_scroll"
	OnMount       = "on_mount"
	OnUnmount     = "on_unmount"
)

// defaultTriggerNames lists the pointer/focus/lifecycle triggers every
// component inherits, each with a trivial uncontrolled spec.
var defaultTriggerNames = []string{
	OnFocus,
	OnBlur,
	OnClick,
	OnContextMenu,
	OnDoubleClick,
	OnMouseDown,
	OnMouseEnter,
	OnMouseLeave,
	OnMouseMove,
	OnMouseOut,
	OnMouseOver,
	OnMouseUp,
	OnScroll,
	OnMount,
	OnUnmount,
}

// defaultTriggers returns a fresh copy of the default trigger map.
func defaultTriggers() map[string]TriggerSpec {
	out := make(map[string]TriggerSpec, len(defaultTriggerNames))
	for _, name := range defaultTriggerNames {
		out[name] = TriggerSpec{Params: []string{"_e"}}
	}
	return out
}
