package engine

var (
	ProductAdjectives = []string{"Compact", "Deluxe", "Portable", "Classic", "Smart", "Rugged", "Ultra", "Mini", "Pro", "Eco", "Wireless", "Heavy"}
	ProductNouns      = []string{"Widget", "Gadget", "Lamp", "Kettle", "Speaker", "Backpack", "Blender", "Router", "Drill", "Monitor", "Keyboard", "Tent"}
	Categories        = []string{"home", "garden", "electronics", "outdoor", "kitchen", "office", "tools"}
	PaymentMethods    = []string{"card", "cash", "transfer", "voucher"}
)
