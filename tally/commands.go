package tally

// commands

type Increment struct {
	Amount int `json:"amount"`
}

type Decrement struct {
	Amount int `json:"amount"`
}
