package core

// doWriteback produces the post-writeback register view Decode reads this
// same cycle: a copy of the committed register file with the retiring
// instruction's result already applied. An illegal retirement performs no
// register update at all, since its rd/v pair is meaningless.
func doWriteback(committed RegFile, memwb MemWb) RegFile {
	next := committed

	if memwb.Valid && !memwb.Illegal {
		next.Write(memwb.Rd, memwb.V)
	}

	return next
}
