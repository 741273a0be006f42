package handler

// state 요청 처리 단계
type state int

const (
	stateStart state = iota
	stateConfigValidated
	stateFetched
	stateResponseBuilt
	stateDone
	stateErrored
)

var stateNames = [...]string{
	stateStart:           "Start",
	stateConfigValidated: "ConfigValidated",
	stateFetched:         "Fetched",
	stateResponseBuilt:   "ResponseBuilt",
	stateDone:            "Done",
	stateErrored:         "Errored",
}

func (s state) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
