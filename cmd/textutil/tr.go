package main

import (
	"github.com/spf13/cobra"

	"github.com/helixml/textutil/application/service"
)

func trCmd(a *app) *cobra.Command {
	var (
		deleteChars bool
		complement  bool
		complementC bool
	)

	cmd := &cobra.Command{
		Use:   "tr [-d] [-c] SET1 [SET2]",
		Short: "Translate or delete characters",
		Long: `Copy standard input to standard output, translating characters of SET1 into
the matching characters of SET2, or deleting characters of SET1 with -d.

SETs are strings of characters. Recognised forms:
  \NNN            character with octal value NNN (1 to 3 digits)
  \\ \a \b \f \n \r \t \v
                  backslash and the usual control characters
  CHAR1-CHAR2     all characters from CHAR1 to CHAR2 in ascending order
  [CHAR*]         in SET2, copies of CHAR until the length of SET1
  [CHAR*REPEAT]   REPEAT copies of CHAR; REPEAT is octal if it starts with 0
  [:CLASS:]       alnum alpha blank cntrl digit graph lower print punct
                  space upper xdigit
  [=CHAR=]        the character CHAR

When SET2 is shorter than SET1 its last character is repeated.`,
		Example: `  textutil tr a-z A-Z
  textutil tr -d '\r'
  textutil tr -dc '[:print:]\n'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.Request{
				Delete:     deleteChars,
				Complement: complement || complementC,
				Operands:   args,
			}
			client := a.client(cmd.Context(), "tr")
			_, err := client.Transliterator.Run(req, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVarP(&deleteChars, "delete", "d", false, "delete characters in SET1, do not translate")
	cmd.Flags().BoolVarP(&complement, "complement", "c", false, "use the complement of SET1")
	cmd.Flags().BoolVarP(&complementC, "complement-chars", "C", false, "same as -c")
	_ = cmd.Flags().MarkHidden("complement-chars")

	return cmd
}
