package backend

import "gitlab.com/nunet/nvctl/models"

// PowerManager abstracts the bbswitch power controller
type PowerManager interface {
	On() error
	Off() error
	Query() (models.PowerState, error)
}

// GPUSwitcher abstracts GPU selection through prime-select
type GPUSwitcher interface {
	Intel() error
	Nvidia() error
	Query() (models.GPU, error)
}
