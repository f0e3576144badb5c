package automation

import "github.com/wgomg/ordertrigger/internal/ui"

const (
	MenuName        = "Order Automation"
	ProcessItemName = "Process Orders Now"
)

// OnOpen registers the order automation menu on host. Calling it again
// replaces the menu rather than adding a second one.
func OnOpen(host ui.MenuHost, inv *Invoker) {
	host.AddMenu(*ui.NewMenu(MenuName).AddItem(ProcessItemName, inv.Run))
}
