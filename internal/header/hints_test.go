package header

import "testing"

func TestHintsFromPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantName  string
		wantEmpNo string
	}{
		{
			name:      "payroll export convention",
			path:      "MT_Payslip_6_2024_Mainak_Chhari_527564.pdf",
			wantName:  "Mainak Chhari",
			wantEmpNo: "527564",
		},
		{
			name:      "full directory path",
			path:      "/data/in/MT_Payslip_6_2024_Mainak_Chhari_527564.md",
			wantName:  "Mainak Chhari",
			wantEmpNo: "527564",
		},
		{
			name:      "numeric suffix only",
			path:      "payslip_2024_527564.pdf",
			wantEmpNo: "527564",
		},
		{
			name: "too few tokens",
			path: "payslip_527564.pdf",
		},
		{
			name: "short numeric suffix ignored",
			path: "MT_Payslip_6_2024_Mainak_Chhari_99.pdf",
			// 99 is under 4 digits; Chhari is alphabetic so the name
			// candidate is still checked.
			wantName: "Mainak Chhari",
		},
		{
			name:      "lowercase tokens give no name",
			path:      "mt_payslip_6_2024_mainak_chhari_527564.pdf",
			wantEmpNo: "527564",
		},
		{
			name: "plain document name",
			path: "report.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := HintsFromPath(tt.path)
			if hints.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", hints.Name, tt.wantName)
			}
			if hints.EmpNo != tt.wantEmpNo {
				t.Errorf("EmpNo = %q, want %q", hints.EmpNo, tt.wantEmpNo)
			}
		})
	}
}
