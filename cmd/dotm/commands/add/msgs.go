package add

// Message constants
const (
	MsgShort = "Move a file into your dotfiles and link it back"
	MsgLong  = `Add moves a file into the dotfiles directory and leaves a symlink at its
original location. When a file with the same name is already in the
dotfiles directory you are asked whether to replace it; --noconfirm
replaces it without asking.

If the symlink can't be created the file is moved back.`

	MsgExample = `  dotm add ~/.zshrc
  dotm add ~/.config/nvim/init.lua --with-name nvim/init.lua`

	MsgFlagWithName = "Name of the file in the dotfiles directory"
)
