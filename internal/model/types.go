package model

type MachineStatus string

const (
	StatusLocked MachineStatus = "LOCKED"
	StatusActive MachineStatus = "ACTIVE"
)

// Session is the single in-flight RVM session. Points accumulate while the
// machine is ACTIVE and are folded into the wallet when the session closes.
type Session struct {
	ID             string
	StartedAt      int64
	LastActivityAt int64
	Points         int64
}

type TransactionKind string

const (
	KindEarn   TransactionKind = "EARN"
	KindRedeem TransactionKind = "REDEEM"
)

// Transaction is one append-only ledger entry. The wallet balance is always
// the fold of EARN minus REDEEM amounts over the full history.
type Transaction struct {
	ID        string          `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Label     string          `json:"label"`
	Amount    int64           `json:"amount"`
	Timestamp int64           `json:"timestamp"`
}

type User struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Avatar      string       `json:"avatar,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
}

type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
}

// Location describes one deployed RVM shown on the locations page.
type Location struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Status   string  `json:"status"`
	Type     string  `json:"type"`
	Capacity int     `json:"capacity"`
}

// RedeemOption is one redemption provider offered on the exchange page.
type RedeemOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
