package tracker

// Exported aliases so the external test package can use the unexported
// message helpers.
var (
	BillPostText         = billPostText
	AppointmentPostText  = appointmentPostText
	AppointmentAddedText = appointmentAddedText
	BillPaidText         = billPaidText
	ChoreDoneText        = choreDoneText
	ShoppingDoneText     = shoppingDoneText
	MaintenanceDoneText  = maintenanceDoneText
	AppointmentDoneText  = appointmentDoneText
)
