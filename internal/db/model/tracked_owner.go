package model

type TrackedOwnerSource string

const (
	TrackedOwnerSourceApi TrackedOwnerSource = "api"
	TrackedOwnerSourceCli TrackedOwnerSource = "cli"
)

type TrackedOwnerDocument struct {
	Owner   string             `bson:"_id"`
	AddedAt int64              `bson:"added_at"`
	Source  TrackedOwnerSource `bson:"source"`
}
