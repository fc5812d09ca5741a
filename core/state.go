package core

// busStateID enumerates the transaction state machine states. The R_ and W_
// groups mirror each other; they differ only in the data phase direction
// and the restart signaling.
type busStateID uint8

const (
	stateStopped busStateID = iota
	stateStopping
	stateStarting
	stateStartingWait

	stateReadAddr
	stateReadAddrWait
	stateReadRegister
	stateReadRegisterWait
	stateReadRestarting
	stateReadTransfer

	stateWriteAddr
	stateWriteAddrWait
	stateWriteRegister
	stateWriteRegisterWait
	stateWriteRestarting
	stateWriteTransfer

	stateNACK
	stateBusError
)
