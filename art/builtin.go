package art

// Default is drawn when no art file is configured.
const Default = `      |\      _,,,---,,_
ZZZzz /,` + "`" + `.-'` + "`" + `'    -.  ;-;;,_
     |,4-  ) )-,_. ,\ (  ` + "`" + `'-'
    '---''(_/--'  ` + "`" + `-'\_)
`

// Cats are printed by --version.
//
//nolint:gochecknoglobals
var Cats = []string{
	`
 /\_/\
( o.o )
 > ^ <`,
	`
  |\__/,|   (` + "`" + `\
  |_ _  |.--.) )
  ( T   )     /
 (((^_(((/(((_/`,
	`
    /\_____/\
   /  o   o  \
  ( ==  ^  == )
   )         (
  (           )
 ( (  )   (  ) )
(__(__)___(__)__)`,
	`
  ,_     _
  |\\_,-~/
  / _  _ |    ,--.
 (  @  @ )   / ,-'
  \  _T_/-._( (
  /         ` + "`" + `. \
 |         _  \ |
  \ \ ,  /      |
   || |-_\__   /
  ((_/` + "`" + `(____,-'`,
	`
      _                ___       _.--.
      \` + "`" + `.|\..----...-'` + "`" + `   ` + "`" + `-._.-'_.-'` + "`" + `
      /  ' ` + "`" + `         ,       __.--'
      )/' _/     \   ` + "`" + `-_,   /
      ` + "`" + `-'" ` + "`" + `"\_  ,_.-;_.-\_ ',
          _.-'_./   {_.'   ; /
         {_.-` + "`" + `\_/  {_.-'  ;_/`,
}
