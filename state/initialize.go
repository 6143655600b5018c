package state

import "time"

// defaultStylesheet is used when configuration does not name one.
const defaultStylesheet = `.header {
  font-weight: bold;
  border-bottom: thin;
  text-align: center;
}

.date {
  -xlsx-num-format: "yyyy-mm-dd";
}

.money {
  -xlsx-num-format: "#,##0.00";
}

.percent {
  -xlsx-num-format: "0.0%";
}

.warning {
  color: #9c0006;
  background-color: #ffc7ce;
}
`

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:            time.Now(),
		Stylesheet:       []byte(defaultStylesheet),
		StylesheetSource: "built-in",
	}
}
