package extmocks

//go:generate mockgen -destination=writer.go -package extmocks io Writer
